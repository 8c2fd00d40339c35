// Package domain defines the wallet data models and the contracts between
// services and stores. It holds plain types and interfaces only.
package domain
