// Package s3 provides an Amazon S3 implementation of the blobstore.Store
// interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "peakjoin/")
//
// # Features
//
//   - Multipart uploads for large peak lists and result sets
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Optional storage class and server side encryption for uploads
package s3
