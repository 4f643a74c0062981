// Package domain contains the value types shared between the tool
// implementations and the delivery surfaces (HTTP handlers, CLI). The types
// are plain data with no infrastructure concerns.
package domain
