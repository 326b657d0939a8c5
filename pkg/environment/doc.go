// Package environment carries the deployment environment (development,
// staging, production) through request contexts.
//
// The portal reads APP_ENV once at startup:
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
//
// Handlers then branch on it, for example to show error details only in
// development:
//
//	if environment.IsDevelopment(r.Context()) {
//		// include err.Error() in the page
//	}
package environment
