// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MartinLundqvist/wine-app-sub000/internal/catalog"
	"github.com/MartinLundqvist/wine-app-sub000/internal/validation"
)

func newValidateCmd(_ *rootOptions) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Check a catalog snapshot for structural errors",
		Example: `  confusion validate --catalog catalog.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, catalogPath)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog snapshot JSON file")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	snap, err := catalog.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = snap.Validate()

	var verr *validation.StructError
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(out, "%s: ok (%d styles, %d clusters, %d descriptors)\n",
			path, len(snap.Styles), len(snap.Clusters), len(snap.Descriptors))
		return nil
	case errors.As(err, &verr):
		for _, fe := range verr.Errors() {
			_, _ = fmt.Fprintf(out, "%s: %s\n", fe.Namespace(), fe.Error())
		}
		return fmt.Errorf("catalog %s has %d validation errors", path, len(verr.Errors()))
	default:
		return fmt.Errorf("catalog %s: %w", path, err)
	}
}
