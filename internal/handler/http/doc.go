// Package http implements the HTTP transport layer of the EasyLearn API.
//
// Requests run through a [Pipeline] of named stages in a fixed order:
// trace id, access logging, body parsing, CORS, rate limiting, static
// uploads and route dispatch. Any error or panic raised by a stage or a
// route handler ends in the error handler, which writes the uniform
// {success:false, message} envelope exactly once.
//
// Resource areas (auth, users, resources, questions, discussions) are
// supplied from outside as [RouteGroup] values and mounted under their path
// prefixes; missing groups answer 501.
package http
