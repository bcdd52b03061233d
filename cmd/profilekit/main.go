// Package main provides the profilekit CLI for encoding, decoding and caching user profiles.
package main

func main() {
	Execute()
}
