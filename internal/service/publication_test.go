package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shoofli/shoofli/internal/apperror"
	"github.com/shoofli/shoofli/internal/model"
	"github.com/shoofli/shoofli/internal/repository"
)

func newPublicationFixture(t *testing.T) (*PublicationService, *repository.History) {
	t.Helper()
	env := newTestEnv(t)
	history := repository.NewHistory(env.store)
	return NewPublicationService(repository.NewPublications(env.store), history, testLogger()), history
}

func TestPost_RecordsHistory(t *testing.T) {
	pubs, history := newPublicationFixture(t)
	ctx := context.Background()

	pub, err := pubs.Post(ctx, "client-1", "  Leaky faucet  ", "Kitchen faucet drips all night", "")
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if pub.Title != "Leaky faucet" {
		t.Errorf("Title = %q, want surrounding whitespace trimmed", pub.Title)
	}

	entries := history.ByUser(ctx, "client-1")
	if len(entries) != 1 || entries[0].ActionType != model.ActionPostedPublication {
		t.Errorf("history = %+v, want one Posted Publication entry", entries)
	}
}

func TestPost_LengthLimits(t *testing.T) {
	pubs, _ := newPublicationFixture(t)
	ctx := context.Background()

	longTitle := strings.Repeat("x", maxPublicationTitleLength+1)
	if _, err := pubs.Post(ctx, "client-1", longTitle, "desc", ""); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("over-long title error = %v, want ErrValidation", err)
	}

	longDesc := strings.Repeat("x", maxDescriptionLength+1)
	if _, err := pubs.Post(ctx, "client-1", "title", longDesc, ""); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("over-long description error = %v, want ErrValidation", err)
	}

	if _, err := pubs.Post(ctx, "client-1", "   ", "desc", ""); !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("blank title error = %v, want ErrValidation", err)
	}
}

func TestPublicationListingsAndDelete(t *testing.T) {
	pubs, _ := newPublicationFixture(t)
	ctx := context.Background()

	a, _ := pubs.Post(ctx, "client-1", "first", "desc", "")
	b, _ := pubs.Post(ctx, "client-2", "second", "desc", "")

	recent := pubs.Recent(ctx)
	if len(recent) != 2 || recent[0].ID != b.ID {
		t.Fatalf("Recent() = %+v, want both publications newest first", recent)
	}

	mine := pubs.ByClient(ctx, "client-1")
	if len(mine) != 1 || mine[0].ID != a.ID {
		t.Fatalf("ByClient() = %+v, want only client-1's publication", mine)
	}

	if err := pubs.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := pubs.ByID(ctx, a.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("ByID(deleted) error = %v, want ErrNotFound", err)
	}
	if err := pubs.Delete(ctx, a.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
