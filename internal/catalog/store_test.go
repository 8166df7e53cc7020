package catalog

import (
	"path/filepath"
	"testing"
)

func TestCatalogCacheRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer db.Close()

	items := SampleCatalog()
	if err := SaveCatalog(db, items); err != nil {
		t.Fatalf("save catalog: %v", err)
	}

	loaded, err := LoadCatalog(db)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(loaded) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(loaded))
	}
	for i := range items {
		if loaded[i].ID != items[i].ID {
			t.Errorf("position %d: expected %s, got %s (order must survive the cache)", i, items[i].ID, loaded[i].ID)
		}
	}
	if loaded[0].Price != items[0].Price || len(loaded[0].AddOns) != len(items[0].AddOns) {
		t.Errorf("item fields lost in round trip: %+v", loaded[0])
	}
}

func TestCatalogCacheReplace(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer db.Close()

	items := SampleCatalog()
	if err := SaveCatalog(db, items); err != nil {
		t.Fatalf("save catalog: %v", err)
	}
	if err := SaveCatalog(db, items[:3]); err != nil {
		t.Fatalf("save smaller catalog: %v", err)
	}

	loaded, err := LoadCatalog(db)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(loaded) != 3 {
		t.Errorf("save must replace, not append; got %d items", len(loaded))
	}
}

func TestCouponCacheRoundTrip(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer db.Close()

	coupons := SampleCoupons()
	if err := SaveCoupons(db, coupons); err != nil {
		t.Fatalf("save coupons: %v", err)
	}

	loaded, err := LoadCoupons(db)
	if err != nil {
		t.Fatalf("load coupons: %v", err)
	}
	if len(loaded) != len(coupons) {
		t.Fatalf("expected %d coupons, got %d", len(coupons), len(loaded))
	}

	byCode := make(map[string]int, len(loaded))
	for i, c := range loaded {
		byCode[c.Code] = i
	}
	i, ok := byCode["FLAT100"]
	if !ok {
		t.Fatal("FLAT100 missing after round trip")
	}
	got := loaded[i]
	if got.Amount != 100 || got.MinOrder == nil || *got.MinOrder != 500 || !got.Active {
		t.Errorf("coupon fields lost in round trip: %+v", got)
	}
}
