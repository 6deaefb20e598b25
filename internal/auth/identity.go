package auth

// Profile is the server-side account record backing a signed-in user.
type Profile struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	AvatarURL string
}

// Identity is the persisted authentication state. The access token is the
// only part saved across restarts; the profile is re-fetched at boot.
type Identity struct {
	UserID      string
	AccessToken string
	Profile     *Profile
}

func (i Identity) HasProfile() bool {
	return i.Profile != nil
}
