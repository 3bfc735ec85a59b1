// Package qrcode renders strings as QR code images, primarily otpauth
// provisioning URIs during MFA enrollment. It is a thin wrapper over
// github.com/skip2/go-qrcode producing PNG bytes or base64 data URIs.
package qrcode
