package db_test

import (
	"context"
	"testing"

	"github.com/yungbote/companyinfo-backend/internal/data/db"
	"github.com/yungbote/companyinfo-backend/internal/data/repos/testutil"
	types "github.com/yungbote/companyinfo-backend/internal/domain"
)

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"":                       "file::memory:?cache=shared&_foreign_keys=on",
		"companies.db":           "companies.db?_foreign_keys=on",
		"file:x?mode=memory":     "file:x?mode=memory&_foreign_keys=on",
		"file:x?_foreign_keys=1": "file:x?_foreign_keys=1",
	}
	for in, want := range cases {
		if got := db.SQLiteDSN(in); got != want {
			t.Fatalf("SQLiteDSN(%q): got=%q want=%q", in, got, want)
		}
	}
}

func TestSeedAppliesOnce(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)

	doc, err := db.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}

	applied, err := db.Seed(ctx, gdb, log, doc)
	if err != nil || !applied {
		t.Fatalf("first Seed: applied=%v err=%v", applied, err)
	}
	if n := testutil.CountRows(t, gdb, &types.Country{}); n != 3 {
		t.Fatalf("countries: got=%d want=3", n)
	}
	if n := testutil.CountRows(t, gdb, &types.Company{}); n != 2 {
		t.Fatalf("companies: got=%d want=2", n)
	}
	if n := testutil.CountRows(t, gdb, &types.Contact{}); n != 3 {
		t.Fatalf("contacts: got=%d want=3", n)
	}

	var history types.SeedHistory
	if err := gdb.First(&history, "name = ?", doc.Name).Error; err != nil {
		t.Fatalf("seed history: %v", err)
	}
	if sum := history.Summary.Data(); sum.Countries != 3 || sum.Companies != 2 || sum.Contacts != 3 {
		t.Fatalf("seed summary=%+v", sum)
	}

	// Remove a seeded row; a second run must not bring it back.
	if err := gdb.Delete(&types.Contact{}, 2).Error; err != nil {
		t.Fatalf("delete contact: %v", err)
	}
	applied, err = db.Seed(ctx, gdb, log, doc)
	if err != nil || applied {
		t.Fatalf("second Seed: applied=%v err=%v", applied, err)
	}
	if n := testutil.CountRows(t, gdb, &types.Contact{}); n != 2 {
		t.Fatalf("contacts after reseed: got=%d want=2", n)
	}
}

func TestSeededIDsDoNotBlockGeneratedIDs(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	doc, err := db.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	if _, err := db.Seed(ctx, gdb, nil, doc); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	c := testutil.SeedCompany(t, ctx, gdb, "Microsoft")
	if c.ID <= 2 {
		t.Fatalf("generated id collides with seed: %d", c.ID)
	}
}

func TestParseSeedRejectsUnnamed(t *testing.T) {
	if _, err := db.ParseSeed([]byte("countries: []\n")); err == nil {
		t.Fatal("expected error for unnamed seed")
	}
	if _, err := db.ParseSeed([]byte("name: [unterminated\n")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	country := testutil.SeedCountry(t, ctx, gdb, "USA")

	err := gdb.WithContext(ctx).Create(&types.Contact{Name: "Ghost", CompanyID: 999, CountryID: country.ID}).Error
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}

func TestDeletingParentCascades(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	usa := testutil.SeedCountry(t, ctx, gdb, "USA")
	apple := testutil.SeedCompany(t, ctx, gdb, "Apple")
	google := testutil.SeedCompany(t, ctx, gdb, "Google")
	testutil.SeedContact(t, ctx, gdb, "John", apple.ID, usa.ID)
	testutil.SeedContact(t, ctx, gdb, "Bob", apple.ID, usa.ID)
	keep := testutil.SeedContact(t, ctx, gdb, "Alice", google.ID, usa.ID)

	if err := gdb.Delete(&types.Company{}, apple.ID).Error; err != nil {
		t.Fatalf("delete company: %v", err)
	}
	var left []types.Contact
	if err := gdb.Find(&left).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(left) != 1 || left[0].ID != keep.ID {
		t.Fatalf("cascade: got=%+v", left)
	}

	if err := gdb.Delete(&types.Country{}, usa.ID).Error; err != nil {
		t.Fatalf("delete country: %v", err)
	}
	if n := testutil.CountRows(t, gdb, &types.Contact{}); n != 0 {
		t.Fatalf("contacts after country delete: got=%d", n)
	}
}
