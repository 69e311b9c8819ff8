// Package manifest compiles a CUE app manifest into a navigation page
// table. The manifest is the declarative front door of a multipage app:
// the CLI validates it and a host runtime feeds its pages to nav.
package manifest

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/rerun/internal/nav"
)

// App is a compiled manifest.
type App struct {
	Name  string
	Pages []nav.Page
}

// Compile parses a CUE value into an App. The value should be the app
// struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`app: { name: "demo", pages: [...] }`)
//	app, err := Compile(v.LookupPath(cue.ParsePath("app")))
func Compile(v cue.Value) (*App, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	app := &App{}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &CompileError{
			Field:   "name",
			Message: "app name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	app.Name = name

	app.Pages, err = parsePages(v)
	if err != nil {
		return nil, err
	}
	if err := nav.Validate(app.Pages); err != nil {
		return nil, &CompileError{
			Field:   "pages",
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}

	return app, nil
}

// CompileString compiles manifest source held in a string.
func CompileString(src string) (*App, error) {
	v := cuecontext.New().CompileString(src)
	return Compile(v.LookupPath(cue.ParsePath("app")))
}

// CompileFile compiles a manifest file from disk.
func CompileFile(path string) (*App, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	v := cuecontext.New().CompileString(string(src), cue.Filename(path))
	return Compile(v.LookupPath(cue.ParsePath("app")))
}

func parsePages(v cue.Value) ([]nav.Page, error) {
	pagesVal := v.LookupPath(cue.ParsePath("pages"))
	if !pagesVal.Exists() {
		return nil, &CompileError{
			Field:   "pages",
			Message: "at least one page is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := pagesVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var pages []nav.Page
	for iter.Next() {
		page, err := parsePage(iter.Value(), len(pages))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func parsePage(v cue.Value, index int) (nav.Page, error) {
	var page nav.Page

	titleVal := v.LookupPath(cue.ParsePath("title"))
	if !titleVal.Exists() {
		return page, &CompileError{
			Field:   fmt.Sprintf("pages[%d].title", index),
			Message: "page title is required",
			Pos:     v.Pos(),
		}
	}
	title, err := titleVal.String()
	if err != nil {
		return page, formatCUEError(err)
	}
	page.Title = title

	if iconVal := v.LookupPath(cue.ParsePath("icon")); iconVal.Exists() {
		if page.Icon, err = iconVal.String(); err != nil {
			return page, formatCUEError(err)
		}
	}
	if keyVal := v.LookupPath(cue.ParsePath("key")); keyVal.Exists() {
		if page.Key, err = keyVal.String(); err != nil {
			return page, formatCUEError(err)
		}
	}
	if defVal := v.LookupPath(cue.ParsePath("default")); defVal.Exists() {
		if page.Default, err = defVal.Bool(); err != nil {
			return page, formatCUEError(err)
		}
	}

	return page, nil
}

// CompileError represents a manifest compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
