// Package server is the profile distribution server behind `wifiprof
// serve`. It keeps a small library of uploaded .mobileconfig files, serves
// the active one to Apple devices with the headers they require, and
// derives Android XML and Wi-Fi QR payloads from the same profile.
package server
