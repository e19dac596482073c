package posts

// CanModify decides whether callerID may mutate the post. Pure check,
// no I/O: only the creator may update or delete their post.
func CanModify(post *Post, callerID string) bool {
	return post != nil && callerID != "" && post.CreatorID == callerID
}
