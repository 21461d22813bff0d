package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gradecheck/internal/filter"
	"gradecheck/internal/session"
)

// selectionFlags are the window and attribute filters shared by every report
// command.
type selectionFlags struct {
	from                 string
	to                   string
	categories           []string
	subcategories        []string
	excludeCategories    []string
	excludeSubcategories []string
	where                []string
	whereNot             []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.from, "from", "", "Window start as YEAR[:SEMESTER] (semester defaults to spring)")
	flags.StringVar(&f.to, "to", "", "Window end as YEAR[:SEMESTER] (semester defaults to winter)")
	flags.StringArrayVar(&f.categories, "category", nil, "Only include this category (repeatable)")
	flags.StringArrayVar(&f.subcategories, "subcategory", nil, "Only include this subcategory (repeatable)")
	flags.StringArrayVar(&f.excludeCategories, "exclude-category", nil, "Exclude this category (repeatable)")
	flags.StringArrayVar(&f.excludeSubcategories, "exclude-subcategory", nil, "Exclude this subcategory (repeatable)")
	flags.StringArrayVar(&f.where, "where", nil, "Only include records where ATTRIBUTE=VALUE (repeatable)")
	flags.StringArrayVar(&f.whereNot, "where-not", nil, "Exclude records where ATTRIBUTE=VALUE (repeatable)")
}

func (f *selectionFlags) selection() (session.Selection, error) {
	var sel session.Selection
	if strings.TrimSpace(f.from) != "" || strings.TrimSpace(f.to) != "" {
		window, err := filter.ParseWindow(f.from, f.to)
		if err != nil {
			return sel, err
		}
		sel.Window = &window
	}

	include := filter.Constraints{}
	if len(f.categories) > 0 {
		include = include.With(filter.AttrCategory, f.categories...)
	}
	if len(f.subcategories) > 0 {
		include = include.With(filter.AttrSubcategory, f.subcategories...)
	}
	include, err := withPairs(include, f.where, "--where")
	if err != nil {
		return sel, err
	}

	exclude := filter.Constraints{}
	if len(f.excludeCategories) > 0 {
		exclude = exclude.With(filter.AttrCategory, f.excludeCategories...)
	}
	if len(f.excludeSubcategories) > 0 {
		exclude = exclude.With(filter.AttrSubcategory, f.excludeSubcategories...)
	}
	exclude, err = withPairs(exclude, f.whereNot, "--where-not")
	if err != nil {
		return sel, err
	}

	if len(include) > 0 {
		sel.Include = include
	}
	if len(exclude) > 0 {
		sel.Exclude = exclude
	}
	return sel, nil
}

func withPairs(c filter.Constraints, pairs []string, flag string) (filter.Constraints, error) {
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%s %q: want ATTRIBUTE=VALUE", flag, pair)
		}
		attr, err := filter.ParseAttribute(name)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", flag, pair, err)
		}
		c = c.With(attr, value)
	}
	return c, nil
}

// load runs the shared prologue of a report command: load the transcript and
// apply the selection.
func (f *selectionFlags) load(ctx *commandContext, cmd *cobra.Command, source string) (*session.Session, error) {
	sel, err := f.selection()
	if err != nil {
		return nil, err
	}
	sess, err := ctx.loadSession(cmd, source)
	if err != nil {
		return nil, err
	}
	sess.Select(sel)
	return sess, nil
}
