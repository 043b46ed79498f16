//go:build tweensoft

package mathutil

var active = &soft
