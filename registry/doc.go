// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package registry is the read API over the current skill catalog.

A Registry holds exactly one Ready catalog.Catalog at a time. Every read goes
to the catalog that is current when the call starts; Swap replaces it with a
single atomic pointer store, so readers never observe a partially built index
and readers already running finish against the catalog they started with.

	reg, err := registry.New(c)
	results := reg.Search("convert this docx to pdf", 5)
	rec, err := reg.GetByID(results[0].ID)
	text, err := reg.GetContent(ctx, rec.ID)

Lookups of unknown ids return a *NotFoundError. StatusCode maps errors from
this package to HTTP status codes for a hosting web layer:

	if err != nil {
		http.Error(w, err.Error(), registry.StatusCode(err))
	}

# Reloading

A Reloader rebuilds the catalog from a catalog.RawSource, either on demand or
on a cron schedule, and swaps it in only when the build succeeds. A failed
build is logged and the current catalog keeps serving.

	rl := registry.NewReloader(reg, loader, source)
	if err := rl.Start("*/15 * * * *"); err != nil {
		return err
	}
	defer rl.Stop()

Open wires all of this from a config.Config.
*/
package registry
