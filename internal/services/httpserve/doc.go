// Package httpserve serves a directory over HTTP.
//
// Routes
//
//	GET /static/*
//	    Raw files from the directory, with content types and range support.
//
//	GET /*
//	    A text file's contents, or an HTML listing for a directory. Missing
//	    paths are 404; unreadable or non-UTF-8 files are 500.
//
// Request paths are cleaned before they are joined to the directory, so a
// request never reaches outside it.
package httpserve
