// Package tmdb implements the catalog source against The Movie Database API.
//
// Fetching a filmography is two round-trips per director: the movie credits
// listing for the person, then a details lookup per directing credit to
// resolve the IMDb id and runtime that the credits payload omits.
package tmdb
