// Package hubsdk provides shared request/response types for the ECO HUB
// KOSOVA HTTP surface and a small client for driving it, used by integration
// tests and by Go services that sit in front of the hub.
package hubsdk
