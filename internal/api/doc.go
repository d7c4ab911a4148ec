// Package api exposes the HTTP surface of the application: evaluating
// pronunciation attempts, recording vocabulary reviews, listing due cards
// and progress, and serving the card catalog. Handlers decode and validate
// requests, call the practice and review services, and translate service
// errors into safe HTTP responses.
package api
