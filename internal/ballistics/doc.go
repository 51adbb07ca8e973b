// Package ballistics models a constant-gravity point mass launched at a fixed angle and
// inverts that model to find the band of launch speeds that thread a target opening.
//
// There is no drag, no spin and no coupling with the motion of the launcher. Every function
// is pure; values are safe to share between goroutines.
package ballistics
