// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides HTTP middleware for request processing.
*/
package middleware
