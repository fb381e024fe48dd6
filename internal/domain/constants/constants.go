// Package constants holds shared domain constants.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"

	// NotifierProviderWebhook posts new-notice events to a local endpoint.
	NotifierProviderWebhook = "webhook"
	// NotifierProviderCommand executes a local command per new notice.
	NotifierProviderCommand = "command"
	// NotifierProviderNoop disables new-notice side effects.
	NotifierProviderNoop = "noop"

	// HeaderWalletAddress carries the caller's wallet address on Record Store requests.
	HeaderWalletAddress = "X-Wallet-Address"
)
