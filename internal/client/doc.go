// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot command-line client: it logs in or
// registers, prints the issued token, and optionally copies it to the
// clipboard or fetches the profile.
package client
