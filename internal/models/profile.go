package models

type UserProfile struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	Department    string `json:"department"`
	Location      string `json:"location"`
	Bio           string `json:"bio"`
	MemberSince   string `json:"memberSince"`
	Status        string `json:"status"`
	Notifications bool   `json:"notifications"`
}

// DefaultProfile is the record every process starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:          "John Doe",
		Email:         "john.doe@example.com",
		Phone:         "+1 (555) 123-4567",
		Role:          "Administrator",
		Department:    "Engineering",
		Location:      "San Francisco, CA",
		Bio:           "Experienced administrator with a passion for technology and innovation.",
		MemberSince:   "2024",
		Status:        "Active",
		Notifications: true,
	}
}

// ProfileUpdate carries only the fields a caller wants to overwrite.
type ProfileUpdate struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Role          *string `json:"role,omitempty"`
	Department    *string `json:"department,omitempty"`
	Location      *string `json:"location,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	MemberSince   *string `json:"memberSince,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}

// ApplyTo returns p with every present field of u written over it.
func (u ProfileUpdate) ApplyTo(p UserProfile) UserProfile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Role != nil {
		p.Role = *u.Role
	}
	if u.Department != nil {
		p.Department = *u.Department
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.MemberSince != nil {
		p.MemberSince = *u.MemberSince
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Notifications != nil {
		p.Notifications = *u.Notifications
	}
	return p
}

// ProfileForm is the editable subset submitted by the dashboard form.
type ProfileForm struct {
	Name          string `form:"name" json:"name"`
	Email         string `form:"email" json:"email"`
	Phone         string `form:"phone" json:"phone"`
	Role          string `form:"role" json:"role"`
	Department    string `form:"department" json:"department"`
	Location      string `form:"location" json:"location"`
	Bio           string `form:"bio" json:"bio"`
	Notifications bool   `form:"notifications" json:"notifications"`
}

// Update converts a form submission into an update touching all eight
// editable fields.
func (f ProfileForm) Update() ProfileUpdate {
	return ProfileUpdate{
		Name:          &f.Name,
		Email:         &f.Email,
		Phone:         &f.Phone,
		Role:          &f.Role,
		Department:    &f.Department,
		Location:      &f.Location,
		Bio:           &f.Bio,
		Notifications: &f.Notifications,
	}
}
