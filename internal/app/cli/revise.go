package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/wot-oss/pkgcoll/internal/commands"
	"github.com/wot-oss/pkgcoll/internal/config"
	"github.com/wot-oss/pkgcoll/internal/model"
)

// ReviseFile publishes the next revision of the named collection file. When author is not empty,
// it replaces the generatedBy author.
func ReviseFile(ctx context.Context, filename, author string) error {
	opts := commands.ReviseOptions{Indent: config.Indent()}
	if author != "" {
		a := model.NewAuthor(author)
		opts.Author = &a
	}
	c, err := commands.NewReviseCommand(time.Now, config.LockTimeout()).Revise(ctx, filename, opts)
	if err != nil {
		Stderrf("could not revise %s: %v", filename, err)
		return err
	}
	fmt.Printf("revised %s: revision %d generated at %s\n", filename, *c.Revision, c.GeneratedAt.Format(time.RFC3339))
	return nil
}
