// Package heuristics holds the best-effort text heuristics used to fill in
// profile fields a live API does not report: gender from a name or bio,
// country from a bio or location string, and abbreviated counts such as
// "1.2K".
//
// The results are guesses. The filter engine never calls into this package;
// sources that need a gender or country pick a NameClassifier or
// LocationExtractor and store the answer on the profile.
package heuristics
