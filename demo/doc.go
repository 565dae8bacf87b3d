// Package demo builds the two compound-path demonstrations: a histogram
// drawn as one path of rectangles, and quadratic Bezier curves drawn as one
// path of MoveTo/Curve3 groups.
//
// Both builders add exactly one PathPatch to the axes they are given.
package demo
