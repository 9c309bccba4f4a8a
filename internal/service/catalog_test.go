package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shoofli/shoofli/internal/apperror"
	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/repository"
)

type catalogFixture struct {
	env     *testEnv
	catalog *CatalogService
	slots   *AvailabilityService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	env := newTestEnv(t)
	availability := repository.NewAvailability(env.store)
	return &catalogFixture{
		env: env,
		catalog: NewCatalogService(
			env.users, env.technicians, availability,
			repository.NewServices(env.store), testLogger(),
		),
		slots: NewAvailabilityService(availability, testLogger()),
	}
}

// registerTechnician registers and approves a technician account.
func (f *catalogFixture) registerTechnician(t *testing.T, email string) model.User {
	t.Helper()
	ctx := context.Background()

	tech, err := f.env.sessions.Register(ctx, technicianForm(email))
	if err != nil {
		t.Fatalf("Register(%s) error = %v", email, err)
	}
	if _, err := f.env.sessions.ApproveUser(ctx, tech.ID); err != nil {
		t.Fatalf("ApproveUser(%s) error = %v", email, err)
	}
	return tech
}

func TestTechnicians_OnlyApprovedWithProfile(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	seedAdmin(t, f.env)

	approved := f.registerTechnician(t, "approved@x.com")

	// Unapproved technician: has a profile, stays invisible.
	f.env.sessions.Register(ctx, technicianForm("waiting@x.com"))

	// Approved technician without a profile (registered bio-less):
	// invisible too.
	form := technicianForm("noprofile@x.com")
	form.Bio = ""
	bare, _ := f.env.sessions.Register(ctx, form)
	f.env.sessions.ApproveUser(ctx, bare.ID)

	directory := f.catalog.Technicians(ctx)
	if len(directory) != 1 {
		t.Fatalf("Technicians() = %d entries, want 1", len(directory))
	}
	entry := directory[0]
	if entry.ID != approved.ID || entry.Specialty != "HVAC" {
		t.Errorf("directory entry = %+v, want the approved technician with their profile", entry)
	}
}

func TestTechnicianView_MarshalKeepsID(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	seedAdmin(t, f.env)

	tech := f.registerTechnician(t, "tech@x.com")

	view, err := f.catalog.TechnicianByID(ctx, tech.ID)
	if err != nil {
		t.Fatalf("TechnicianByID() error = %v", err)
	}
	if view.ID != tech.ID {
		t.Fatalf("view.ID = %q, want %q", view.ID, tech.ID)
	}

	// The embedded User and TechnicianProfile both carry an "id" field, so
	// the encoding must come from the view's own ID.
	data, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded["id"] != tech.ID {
		t.Errorf(`encoded "id" = %v, want %q`, decoded["id"], tech.ID)
	}
	if decoded["specialty"] != "HVAC" {
		t.Errorf(`encoded "specialty" = %v, want the profile fields alongside`, decoded["specialty"])
	}
}

func TestTechnicianByID_ComposesAvailability(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	seedAdmin(t, f.env)

	tech := f.registerTechnician(t, "tech@x.com")
	f.slots.AddSlot(ctx, tech.ID, "2026-09-01", "09:00", "10:00")
	f.slots.AddSlot(ctx, tech.ID, "2026-09-01", "10:00", "11:00")

	view, err := f.catalog.TechnicianByID(ctx, tech.ID)
	if err != nil {
		t.Fatalf("TechnicianByID() error = %v", err)
	}
	if view.Email != "tech@x.com" {
		t.Errorf("Email = %q, user fields must be promoted into the view", view.Email)
	}
	if len(view.Availability) != 2 {
		t.Errorf("Availability = %d slots, want 2", len(view.Availability))
	}

	if _, err := f.catalog.TechnicianByID(ctx, "missing"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("TechnicianByID(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestCreateService_PriceMustBePositive(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	if _, err := f.catalog.CreateService(ctx, "tech-1", "Boiler check", "Full inspection", 0); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("zero price error = %v, want ErrValidation", err)
	}
	if _, err := f.catalog.CreateService(ctx, "tech-1", "Boiler check", "Full inspection", -5); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("negative price error = %v, want ErrValidation", err)
	}

	svc, err := f.catalog.CreateService(ctx, "tech-1", "Boiler check", "Full inspection", 49.99)
	if err != nil {
		t.Fatalf("CreateService() error = %v", err)
	}
	if svc.Price != 49.99 {
		t.Errorf("Price = %v, want 49.99", svc.Price)
	}
}

func TestUpdateService_PatchGuardsPrice(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	svc, _ := f.catalog.CreateService(ctx, "tech-1", "Boiler check", "Full inspection", 50)

	updated, err := f.catalog.UpdateService(ctx, svc.ID, map[string]any{"price": 60.0, "title": "Boiler service"})
	if err != nil {
		t.Fatalf("UpdateService() error = %v", err)
	}
	if updated.Price != 60 || updated.Title != "Boiler service" {
		t.Errorf("updated = %+v, want both fields patched", updated)
	}
	if updated.Description != "Full inspection" {
		t.Errorf("Description = %q, unpatched fields must survive", updated.Description)
	}

	if _, err := f.catalog.UpdateService(ctx, svc.ID, map[string]any{"price": 0.0}); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("zero price patch error = %v, want ErrValidation", err)
	}
	if _, err := f.catalog.UpdateService(ctx, "missing", map[string]any{"title": "x"}); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateService(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteService(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	svc, _ := f.catalog.CreateService(ctx, "tech-1", "Boiler check", "Full inspection", 50)
	f.catalog.CreateService(ctx, "tech-1", "Radiator flush", "All radiators", 80)

	if err := f.catalog.DeleteService(ctx, svc.ID); err != nil {
		t.Fatalf("DeleteService() error = %v", err)
	}
	remaining := f.catalog.ServicesOf(ctx, "tech-1")
	if len(remaining) != 1 || remaining[0].Title != "Radiator flush" {
		t.Errorf("ServicesOf() = %+v, want only the surviving offering", remaining)
	}
	if err := f.catalog.DeleteService(ctx, svc.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second DeleteService() error = %v, want ErrNotFound", err)
	}
}
