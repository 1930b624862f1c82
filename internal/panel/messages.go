package panel

// User-facing status messages.
const (
	msgLoggedIn          = "Successfully logged in!"
	msgLoginFailed       = "Login failed"
	msgLoginUnreachable  = "Login failed. Please check your connection."
	msgFetchFailed       = "Failed to fetch data"
	msgFetchUnreachable  = "Failed to fetch shopkeepers. Please check your connection."
	msgSelectToAccept    = "Please select at least one shopkeeper to accept."
	msgAccepted          = "Successfully verified %d shopkeepers!"
	msgAcceptFailed      = "Failed to accept shopkeepers"
	msgAcceptUnreachable = "Failed to accept shopkeepers. Please try again."
	msgSelectToDelete    = "Please select at least one shopkeeper to delete."
	msgDeleted           = "Successfully deleted %d shopkeepers!"
	msgDeleteFailed      = "Failed to delete shopkeepers"
	msgDeleteUnreachable = "Failed to delete shopkeepers. Please try again."
	msgConfirmDelete     = "Are you sure you want to delete %d shopkeeper(s)? This action cannot be undone."
)
