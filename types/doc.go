// Package types holds the primitive geospatial values shared by every
// service client: latitude/longitude pairs and bounding boxes, with the
// exact wire formats the remote services expect.
package types
