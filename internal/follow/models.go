package follow

import "strings"

// User is an entry of the suggested-users directory.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	FollowsYou  bool   `json:"followsYou"`
	IsFollowing bool   `json:"isFollowing"`
}

// Filter narrows List. Query matches name or username case-insensitively.
type Filter struct {
	Query      string
	FollowsYou bool
}

func (f Filter) matches(u User) bool {
	if f.FollowsYou && !u.FollowsYou {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Username), q)
}

const avatarBase = "https://images.pexels.com/photos/"

// Defaults is the built-in suggested-users directory.
func Defaults() []User {
	return []User{
		{ID: "1", Name: "Emma Watson", Username: "@emmawatson", FollowsYou: true,
			Avatar: avatarBase + "415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:    "Digital content creator & lifestyle blogger"},
		{ID: "2", Name: "James Smith", Username: "@jamessmith",
			Avatar: avatarBase + "1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:    "Photographer | Travel enthusiast"},
		{ID: "3", Name: "Sophia Chen", Username: "@sophiachen", FollowsYou: true,
			Avatar: avatarBase + "774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:    "Fashion designer & style curator"},
		{ID: "4", Name: "Michael Brown", Username: "@michaelbrown",
			Avatar: avatarBase + "220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:    "Tech entrepreneur | Web3 enthusiast"},
		{ID: "5", Name: "Olivia Garcia", Username: "@oliviagarcia", FollowsYou: true,
			Avatar: avatarBase + "1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:    "Travel vlogger | Adventure seeker"},
		{ID: "6", Name: "Daniel Kim", Username: "@danielkim",
			Avatar: avatarBase + "1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=150",
			Bio:    "Fitness coach & nutrition expert"},
	}
}
