// Package postman provides the public types and interfaces of the Postman
// API client: the Client interface, configuration, the error taxonomy with
// its classification and predicate helpers, a generic retry helper, API
// version detection, and secret variable detection.
//
// Construct a concrete client with the postmanclient package:
//
//	client, err := postmanclient.NewWithAPIKey(ctx, os.Getenv("POSTMAN_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	collections, err := client.Collections().List(ctx, "")
//
// All errors returned by API operations wrap a *postman.Error whose Kind
// places it in a closed taxonomy, so callers can branch with errors.As or
// the Is* predicates:
//
//	if postman.IsNotFound(err) {
//		// create instead of update
//	}
package postman
