// Wine App - Wine Knowledge Catalog
// Copyright 2026 Martin Lundqvist
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/MartinLundqvist/wine-app

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and carries the domain tags used by catalog snapshots and
// configuration:
//
//	difficulty  easy, medium or hard (case-insensitive)
//	salience    dominant, supporting or occasional
//	loglevel    a level name understood by the logging package
//
// Field names in errors follow the json (or koanf) tag of the field, so a
// failure deep inside a catalog reads as "styles[3].structure[0].maxValue".
//
//	if verr := validation.ValidateStruct(&snapshot); verr != nil {
//	    for _, fe := range verr.Errors() {
//	        logging.Ctx(ctx).Warn().Str("field", fe.Namespace()).Msg(fe.Error())
//	    }
//	}
package validation
