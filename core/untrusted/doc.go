// Copyright 2025 - 2026, the Ofra CV Site contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package untrusted handles values that originate from the client and
therefore cannot be trusted: cookies and the preferences read from them.
*/
package untrusted
