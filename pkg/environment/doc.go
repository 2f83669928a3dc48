// Package environment names the deployment environment the portal runs in
// and carries it through request contexts.
//
// Parse normalizes the APP_ENV value ("prod", "stage", "dev" and their long
// forms); anything unrecognized is Development. Middleware attaches the value
// to every request so handlers can, for example, hide internal error details
// in production:
//
//	r.Use(environment.Middleware(environment.Parse(cfg.Env)))
//	...
//	if environment.IsProduction(r.Context()) { ... }
package environment
