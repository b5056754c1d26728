// Package render turns a parsed configuration record into the other
// formats the profile server hands out: Android WifiConfiguration XML, the
// WIFI: payload used by Wi-Fi QR codes and a secret-masked summary for
// display.
package render
