// Package scaffold ties the engine together for callers such as the CLI.
//
// A run loads configuration, builds the template search roots, locates the
// template, resolves variables and hands the result to the materializer:
//
//	engine := scaffold.New()
//	result, err := engine.Generate(ctx, scaffold.Request{
//	    ProjectName: "demo",
//	    Template:    "standard",
//	})
//
// Variables are layered, lowest first: derived values (module_name,
// project_slug, license_text), built-in defaults, the git user identity,
// the config file, the answers file, --set pairs and finally the project
// name itself. A request without a template uses the built-in template for
// its project_type.
package scaffold
