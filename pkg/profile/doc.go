// Package profile decodes Apple configuration profiles (.mobileconfig
// property lists) into a types.ConfigurationRecord.
//
// Only the first PayloadContent entry whose PayloadType is
// com.apple.wifi.managed is read; later wifi payloads in the same profile
// are ignored. Fields that are missing or carry an unexpected type are left
// unset rather than failing the whole parse. Parsing is pure and safe for
// concurrent use.
package profile
