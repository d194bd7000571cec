package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent identical work into one call whose result every caller shares.

import "golang.org/x/sync/singleflight"

// VerifyGroup deduplicates registry verification against the database.
// Callers use the constant key VerifyKey since there is only one registry.
var VerifyGroup singleflight.Group

const VerifyKey = "registry:verify"
