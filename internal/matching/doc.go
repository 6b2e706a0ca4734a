// Package matching pairs objects of a reference document with objects of
// an actual document.
//
// Surfaces are paired by nearest gross area within a tolerance, either
// strictly one-to-one or permissively many-to-one. Spaces are paired by
// sorted name, each actual space name containing its reference name.
package matching
