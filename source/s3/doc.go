// Package s3 provides a source.Store backed by Amazon S3.
//
// Objects are downloaded whole into memory with the transfer manager's
// parallel ranged downloader before counting starts.
package s3
