// Package feature provides the portal's feature flags.
//
// Flags are seeded from the site document (for example memberRegistration or
// memberDirectory) and may be overridden per deployment with FEATURE_FLAGS,
// a comma separated list of name:bool pairs:
//
//	FEATURE_FLAGS=memberDirectory:true,notifications:false
//
// Handlers consult a Provider directly, or routes are wrapped with Require so
// a disabled feature answers 404 as if the route did not exist:
//
//	r.With(feature.Require(flags, feature.MemberDirectory)).Get("/members", list)
package feature
