// Package badgeofshame provides top-level metadata for the Badge Of Shame service.
//
// @title Badge Of Shame
// @version 1.0
// @description Renders an SVG badge naming the author of the push that broke the last Travis CI build of a GitHub repository.
// @BasePath /
// @securityDefinitions.apikey OperatorAuth
// @in header
// @name Authorization
// @description Provide the operator bearer token as `Bearer <token>`.
package badgeofshame
