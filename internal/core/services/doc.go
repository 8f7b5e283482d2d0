// Package services implements the driving port interfaces.
// Services contain the application logic and orchestrate calls to the
// ipa transcoder, the feature algebra and the driven ports (adapters).
//
// Services never fail on unreadable IPA unless a caller asks for strict
// handling; parse and render report problems in-band.
package services
