// Package sitecontent provides the content-management core for a corporate
// site backend: media albums, blog articles, downloadable documents and a
// business/product/project catalog, plus a unified search across all of them.
//
// The package is storage-agnostic. Persistence is consumed through the Store
// interface (see repo/memory and repo/postgres for implementations) and file
// bytes through the BlobStore interface (see storage/memory and storage/s3).
//
// Create a service with functional options:
//
//	svc, err := sitecontent.New(
//	    sitecontent.WithStore(memory.New()),
//	    sitecontent.WithDefaultImageURL("https://cdn.example.com/default.png"),
//	)
package sitecontent
