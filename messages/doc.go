// Package messages holds the generated message packages, one per unit:
// login/all and login/versionN for the login protocol and world/<name> for
// each world release.
package messages

//go:generate go run ../cmd/wowgen -config ../wowgen.toml -schema ../ir/wow.json -out .
