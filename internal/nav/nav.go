// Package nav resolves the active page of a multipage app and publishes
// the page table to the client.
package nav

import (
	"errors"
	"fmt"

	"github.com/roach88/rerun/internal/state"
	"github.com/roach88/rerun/internal/wire"
)

// ErrNoPages is returned when Navigation is called with an empty table.
var ErrNoPages = errors.New("nav: at least one page is required")

// Navigation declares the app's page table for this run. It validates the
// table, appends a navigation message to the run's queue, and resolves the
// active page from the context's requested page hash.
//
// A requested hash that matches no declared page does not fail the run:
// the runtime logs a warning and serves the default page instead, so a
// stale client link after a page rename degrades to the default page
// rather than an error. The default page is the first entry marked
// Default, or the first declared entry. Declaration order is otherwise
// implementation-defined and not part of the contract.
//
// The resolved page's hash is written back to the context so subsequent
// widget registrations bind to the page actually served.
func Navigation(ctx *state.Context, pages []Page) (Page, error) {
	if err := Validate(pages); err != nil {
		return Page{}, err
	}

	entries := make([]wire.NavEntry, len(pages))
	for i, p := range pages {
		entries[i] = wire.NavEntry{
			PageHash: p.Hash(),
			Title:    p.Title,
			Icon:     p.Icon,
		}
	}
	ctx.Queue.Enqueue(wire.Envelope{
		Type: wire.EnvelopeNav,
		Nav:  &wire.NavMessage{Entries: entries},
	})

	active := resolve(ctx, pages)
	ctx.PageHash = active.Hash()
	return active, nil
}

func resolve(ctx *state.Context, pages []Page) Page {
	if ctx.PageHash != "" {
		for _, p := range pages {
			if p.Hash() == ctx.PageHash {
				return p
			}
		}
		ctx.Log.Warn("falling back to default page",
			"requested_page_hash", ctx.PageHash)
	}
	return defaultPage(pages)
}

func defaultPage(pages []Page) Page {
	for _, p := range pages {
		if p.Default {
			return p
		}
	}
	return pages[0]
}

// Validate checks a page table: non-empty, every title set, and no two
// pages sharing an identity reference.
func Validate(pages []Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}
	seen := make(map[string]string, len(pages))
	for _, p := range pages {
		if p.Title == "" {
			return errors.New("nav: page title must not be empty")
		}
		ref := p.ref()
		if prev, dup := seen[ref]; dup {
			return fmt.Errorf("nav: pages %q and %q share the reference %q", prev, p.Title, ref)
		}
		seen[ref] = p.Title
	}
	return nil
}
