// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin API.

# Admin Keys

A single shared admin key is configured through ADMIN_KEY (or -admin-key).
Requests to /admin/ routes carry it in the X-Admin-Key header:

	err := auth.ValidateAdminKey(r.Header.Get(auth.AdminKeyHeader), cfg.AdminKey)

Keys are compared in constant time. A fresh key can be generated with:

	key, err := auth.GenerateAdminKey()  // 43 URL-safe characters

or from the command line with `polls genkey`.
*/
package auth
