// Package geoexport serializes an accepted growth.Result into a GeoJSON
// FeatureCollection: one LineString feature per segment, carrying its
// numeric id and {dir, severed, highway} properties. It sits outside the
// generation core and is the only package in this module that imports a
// geometry-serialization library.
package geoexport
