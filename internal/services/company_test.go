package services

import (
	"testing"

	"github.com/yungbote/companyinfo-backend/internal/data/repos/testutil"
	types "github.com/yungbote/companyinfo-backend/internal/domain"
)

func TestCompanyServiceCreateThenGet(t *testing.T) {
	s := newTestServices(t)

	for _, name := range []string{"Apple", "Google", "Ünïcode GmbH"} {
		created, err := s.Company.Create(bg, &types.Company{Name: name})
		if err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
		if created.ID == 0 {
			t.Fatalf("Create(%q): no generated id", name)
		}
		got, err := s.Company.GetByID(bg, created.ID)
		if err != nil || got == nil {
			t.Fatalf("GetByID(%d): got=%v err=%v", created.ID, got, err)
		}
		if *got != *created || got.Name != name {
			t.Fatalf("round trip: got=%+v want=%+v", got, created)
		}
	}
}

func TestCompanyServiceCreateIgnoresCallerID(t *testing.T) {
	s := newTestServices(t)
	first, err := s.Company.Create(bg, &types.Company{Name: "Apple"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	in := &types.Company{ID: first.ID, Name: "Impostor"}
	second, err := s.Company.Create(bg, in)
	if err != nil {
		t.Fatalf("Create with caller id: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("caller-supplied id was used")
	}
	if in.ID != first.ID {
		t.Fatal("input mutated")
	}
	got, _ := s.Company.GetByID(bg, first.ID)
	if got.Name != "Apple" {
		t.Fatalf("existing row overwritten: %+v", got)
	}
}

func TestCompanyServiceGetMissing(t *testing.T) {
	s := newTestServices(t)
	got, err := s.Company.GetByID(bg, 404)
	if err != nil || got != nil {
		t.Fatalf("GetByID missing: got=%v err=%v", got, err)
	}
}

func TestCompanyServiceList(t *testing.T) {
	s := newTestServices(t)
	empty, err := s.Company.List(bg)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("List empty: got=%v err=%v", empty, err)
	}
	testutil.SeedCompany(t, bg, s.db, "B")
	testutil.SeedCompany(t, bg, s.db, "A")
	rows, err := s.Company.List(bg)
	if err != nil || len(rows) != 2 || rows[0].Name != "B" {
		t.Fatalf("List: got=%v err=%v", rows, err)
	}
}

func TestCompanyServiceUpdate(t *testing.T) {
	s := newTestServices(t)
	c := testutil.SeedCompany(t, bg, s.db, "Apple")

	ok, err := s.Company.Update(bg, &types.Company{ID: c.ID, Name: "Apple Inc."})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	got, _ := s.Company.GetByID(bg, c.ID)
	if got.Name != "Apple Inc." {
		t.Fatalf("after Update: %+v", got)
	}

	ok, err = s.Company.Update(bg, &types.Company{ID: 999, Name: "Ghost"})
	if err != nil || ok {
		t.Fatalf("Update missing: ok=%v err=%v", ok, err)
	}
	if n := testutil.CountRows(t, s.db, &types.Company{}); n != 1 {
		t.Fatalf("store changed by missed update: rows=%d", n)
	}
	got, _ = s.Company.GetByID(bg, c.ID)
	if got.Name != "Apple Inc." {
		t.Fatalf("store changed by missed update: %+v", got)
	}
}

func TestCompanyServiceDeleteCascades(t *testing.T) {
	s := newTestServices(t)
	usa := testutil.SeedCountry(t, bg, s.db, "USA")
	apple := testutil.SeedCompany(t, bg, s.db, "Apple")
	google := testutil.SeedCompany(t, bg, s.db, "Google")
	testutil.SeedContact(t, bg, s.db, "John", apple.ID, usa.ID)
	testutil.SeedContact(t, bg, s.db, "Bob", apple.ID, usa.ID)
	alice := testutil.SeedContact(t, bg, s.db, "Alice", google.ID, usa.ID)

	ok, err := s.Company.Delete(bg, apple.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if got, _ := s.Company.GetByID(bg, apple.ID); got != nil {
		t.Fatalf("company still present: %+v", got)
	}
	contacts, err := s.Contact.List(bg)
	if err != nil {
		t.Fatalf("List contacts: %v", err)
	}
	if len(contacts) != 1 || contacts[0].ID != alice.ID {
		t.Fatalf("cascade: remaining=%v", contacts)
	}
}

func TestCompanyServiceDeleteMissing(t *testing.T) {
	s := newTestServices(t)
	ok, err := s.Company.Delete(bg, 12345)
	if err != nil || ok {
		t.Fatalf("Delete missing: ok=%v err=%v", ok, err)
	}
}

func TestCompanyServiceStoreFailure(t *testing.T) {
	s := newTestServices(t)
	closeDB(t, s.db)

	if _, err := s.Company.List(bg); err == nil {
		t.Fatal("List: expected error")
	}
	if _, err := s.Company.GetByID(bg, 1); err == nil {
		t.Fatal("GetByID: expected error")
	}
	if _, err := s.Company.Create(bg, &types.Company{Name: "x"}); err == nil {
		t.Fatal("Create: expected error")
	}
	if _, err := s.Company.Update(bg, &types.Company{ID: 1, Name: "x"}); err == nil {
		t.Fatal("Update: expected error")
	}
	if _, err := s.Company.Delete(bg, 1); err == nil {
		t.Fatal("Delete: expected error")
	}
}
