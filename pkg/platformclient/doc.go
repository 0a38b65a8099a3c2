// Package platformclient is the entry point for creating Platform API clients.
//
// Basic usage:
//
//	client, err := platformclient.New(&platform.Config{
//		APIKey: os.Getenv("PLATFORM_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	project, err := client.Projects().Get(ctx, "proj_123")
//	if platform.IsNotFound(err) {
//		// ...
//	}
//
// Clients can also be configured entirely from PLATFORM_* environment
// variables with NewFromEnv.
package platformclient
