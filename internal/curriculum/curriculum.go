// Package curriculum holds the static 21-day warmup task templates.
package curriculum

// TotalDays is the length of the warmup program.
const TotalDays = 21

// TaskTemplate describes one task to materialize per device for a given day.
// Type is the natural key within a day; where the reference curriculum repeats
// an activity morning and afternoon the type carries the period suffix so the
// (device, day, type) key stays unique.
type TaskTemplate struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}

// DefaultTasks returns the task templates keyed by day number. Days without
// curriculum content yet (6-21) have no entry and expand to nothing. The
// returned map is shared and must be treated as read-only.
func DefaultTasks() map[int][]TaskTemplate {
	return defaultTasks
}

var defaultTasks = map[int][]TaskTemplate{
	1: {
		{Type: "profile_setup", Description: "Upload a profile photo (70% female / 30% male split across the fleet)", Metadata: map[string]any{"category": "profile"}},
		{Type: "metadata_change", Description: "Strip the metadata from the profile image", Metadata: map[string]any{"category": "profile"}},
		{Type: "name_setup", Description: "Set a common first and last name", Metadata: map[string]any{"category": "profile"}},
		{Type: "description_setup", Description: "Add a message to the profile description", Metadata: map[string]any{"category": "profile"}},
		{Type: "two_factor", Description: "Enable two-step verification", Metadata: map[string]any{"category": "security"}},
		{Type: "complete_profile", Description: "Fill in every requested profile field", Metadata: map[string]any{"category": "profile"}},
		{Type: "wait_period", Description: "Do nothing else - leave the account idle for 24 to 48 hours", Metadata: map[string]any{"category": "waiting"}},
	},
	2: {
		{Type: "join_groups", Description: "Join 2 WhatsApp groups", Metadata: map[string]any{"count": 2, "category": "groups"}},
		{Type: "receive_messages_morning", Description: "Receive 2 messages in the morning", Metadata: map[string]any{"count": 2, "period": "morning", "category": "messages"}},
		{Type: "receive_messages_afternoon", Description: "Receive 3 messages in the afternoon", Metadata: map[string]any{"count": 3, "period": "afternoon", "category": "messages"}},
		{Type: "receive_audio_morning", Description: "Receive 4 voice notes in the morning", Metadata: map[string]any{"count": 4, "period": "morning", "category": "audio"}},
		{Type: "receive_audio_afternoon", Description: "Receive 1 voice note in the afternoon", Metadata: map[string]any{"count": 1, "period": "afternoon", "category": "audio"}},
		{Type: "receive_images_morning", Description: "Receive 3 images in the morning", Metadata: map[string]any{"count": 3, "period": "morning", "category": "images"}},
		{Type: "receive_images_afternoon", Description: "Receive 2 images in the afternoon", Metadata: map[string]any{"count": 2, "period": "afternoon", "category": "images"}},
		{Type: "receive_videos_morning", Description: "Receive 1 video in the morning", Metadata: map[string]any{"count": 1, "period": "morning", "category": "videos"}},
		{Type: "receive_videos_afternoon", Description: "Receive 1 video in the afternoon", Metadata: map[string]any{"count": 1, "period": "afternoon", "category": "videos"}},
		{Type: "delete_messages", Description: "Delete one message in 2 different conversations", Metadata: map[string]any{"count": 1, "conversations": 2, "category": "messages"}},
	},
	3: {
		{Type: "chat_contacts_morning", Description: "Chat with 2 contacts in the morning", Metadata: map[string]any{"count": 2, "period": "morning", "category": "chat"}},
		{Type: "chat_contacts_afternoon", Description: "Chat with 3 contacts in the afternoon", Metadata: map[string]any{"count": 3, "period": "afternoon", "category": "chat"}},
		{Type: "receive_messages_morning", Description: "Receive 4 messages in the morning", Metadata: map[string]any{"count": 4, "period": "morning", "category": "messages"}},
		{Type: "receive_messages_afternoon", Description: "Receive 3 messages in the afternoon", Metadata: map[string]any{"count": 3, "period": "afternoon", "category": "messages"}},
		{Type: "receive_audio_morning", Description: "Receive 3 voice notes in the morning", Metadata: map[string]any{"count": 3, "period": "morning", "category": "audio"}},
		{Type: "receive_audio_afternoon", Description: "Receive 4 voice notes in the afternoon", Metadata: map[string]any{"count": 4, "period": "afternoon", "category": "audio"}},
		{Type: "receive_images_morning", Description: "Receive 3 images in the morning", Metadata: map[string]any{"count": 3, "period": "morning", "category": "images"}},
		{Type: "receive_images_afternoon", Description: "Receive 2 images in the afternoon", Metadata: map[string]any{"count": 2, "period": "afternoon", "category": "images"}},
		{Type: "receive_videos_morning", Description: "Receive 2 videos in the morning", Metadata: map[string]any{"count": 2, "period": "morning", "category": "videos"}},
		{Type: "receive_videos_afternoon", Description: "Receive 3 videos in the afternoon", Metadata: map[string]any{"count": 3, "period": "afternoon", "category": "videos"}},
		{Type: "create_group", Description: "Create a group and add 3 people", Metadata: map[string]any{"members": 3, "category": "groups"}},
		{Type: "interact_group", Description: "Interact in the group created today", Metadata: map[string]any{"category": "groups"}},
		{Type: "join_groups", Description: "Join 2 WhatsApp groups", Metadata: map[string]any{"count": 2, "category": "groups"}},
		{Type: "send_audio", Description: "Send 4 voice notes in the groups", Metadata: map[string]any{"count": 4, "category": "audio"}},
		{Type: "forward_messages", Description: "Forward 3 messages", Metadata: map[string]any{"count": 3, "category": "messages"}},
		{Type: "delete_messages", Description: "Delete 3 messages in different conversations", Metadata: map[string]any{"count": 3, "category": "messages"}},
		{Type: "send_stickers", Description: "Send a sticker to 3 contacts", Metadata: map[string]any{"count": 3, "category": "stickers"}},
		{Type: "send_emoji", Description: "Send an emoji in 5 conversations", Metadata: map[string]any{"count": 5, "category": "emoji"}},
		{Type: "send_images", Description: "Send 2 images to different contacts", Metadata: map[string]any{"count": 2, "category": "images"}},
		{Type: "send_documents", Description: "Send 1 PDF to different contacts", Metadata: map[string]any{"count": 1, "category": "documents"}},
		{Type: "missed_call", Description: "Ring someone and hang up before they answer", Metadata: map[string]any{"category": "calls"}},
		{Type: "mark_unread", Description: "Mark a conversation as unread", Metadata: map[string]any{"category": "messages"}},
		{Type: "post_status", Description: "Post 3 status updates", Metadata: map[string]any{"count": 3, "category": "status"}},
	},
	4: {
		{Type: "chat_contacts", Description: "Chat with 8 new contacts throughout the day", Metadata: map[string]any{"count": 8, "category": "chat"}},
		{Type: "receive_messages_morning", Description: "Receive 6 messages in the morning", Metadata: map[string]any{"count": 6, "period": "morning", "category": "messages"}},
		{Type: "receive_messages_afternoon", Description: "Receive 5 messages in the afternoon", Metadata: map[string]any{"count": 5, "period": "afternoon", "category": "messages"}},
		{Type: "receive_audio_morning", Description: "Receive 4 voice notes in the morning", Metadata: map[string]any{"count": 4, "period": "morning", "category": "audio"}},
		{Type: "receive_audio_afternoon", Description: "Receive 4 voice notes in the afternoon", Metadata: map[string]any{"count": 4, "period": "afternoon", "category": "audio"}},
		{Type: "receive_images_morning", Description: "Receive 6 images in the morning", Metadata: map[string]any{"count": 6, "period": "morning", "category": "images"}},
		{Type: "receive_images_afternoon", Description: "Receive 3 images in the afternoon", Metadata: map[string]any{"count": 3, "period": "afternoon", "category": "images"}},
		{Type: "receive_videos_morning", Description: "Receive 3 videos in the morning", Metadata: map[string]any{"count": 3, "period": "morning", "category": "videos"}},
		{Type: "receive_videos_afternoon", Description: "Receive 2 videos in the afternoon", Metadata: map[string]any{"count": 2, "period": "afternoon", "category": "videos"}},
		{Type: "add_vcard", Description: "Add 6 vCards", Metadata: map[string]any{"count": 6, "category": "contacts"}},
		{Type: "pin_contact", Description: "Pin 1 contact", Metadata: map[string]any{"count": 1, "category": "contacts"}},
		{Type: "join_groups", Description: "Join 2 WhatsApp groups", Metadata: map[string]any{"count": 2, "category": "groups"}},
		{Type: "audio_call", Description: "Make 1 voice call of 10 minutes in the morning", Metadata: map[string]any{"duration": 10, "period": "morning", "category": "calls"}},
		{Type: "video_call", Description: "Make a video call of 5 minutes in the afternoon", Metadata: map[string]any{"duration": 5, "period": "afternoon", "category": "calls"}},
		{Type: "receive_audio_calls", Description: "Receive 2 voice calls of 8 minutes throughout the day", Metadata: map[string]any{"count": 2, "duration": 8, "category": "calls"}},
		{Type: "receive_video_calls", Description: "Receive 2 video calls of 10 minutes throughout the day", Metadata: map[string]any{"count": 2, "duration": 10, "category": "calls"}},
		{Type: "send_temp_images_morning", Description: "Send 12 view-once images in the morning to 36 different contacts", Metadata: map[string]any{"count": 12, "contacts": 36, "period": "morning", "category": "images"}},
		{Type: "send_temp_images_afternoon", Description: "Send 11 view-once images in the afternoon to 29 different contacts", Metadata: map[string]any{"count": 11, "contacts": 29, "period": "afternoon", "category": "images"}},
		{Type: "send_audio", Description: "Send 7 voice notes", Metadata: map[string]any{"count": 7, "category": "audio"}},
		{Type: "forward_messages", Description: "Forward 5 messages", Metadata: map[string]any{"count": 5, "category": "messages"}},
		{Type: "delete_messages", Description: "Delete 5 messages in different conversations", Metadata: map[string]any{"count": 5, "category": "messages"}},
		{Type: "archive_conversations", Description: "Archive 2 conversations", Metadata: map[string]any{"count": 2, "category": "conversations"}},
		{Type: "favorite_messages", Description: "Star 5 messages", Metadata: map[string]any{"count": 5, "category": "messages"}},
		{Type: "post_status", Description: "Post 5 status updates", Metadata: map[string]any{"count": 5, "category": "status"}},
	},
	5: {
		{Type: "chat_contacts", Description: "Chat with 17 new contacts throughout the day", Metadata: map[string]any{"count": 17, "category": "chat"}},
		{Type: "receive_messages_morning", Description: "Receive 10 messages in the morning", Metadata: map[string]any{"count": 10, "period": "morning", "category": "messages"}},
		{Type: "receive_messages_afternoon", Description: "Receive 6 messages in the afternoon", Metadata: map[string]any{"count": 6, "period": "afternoon", "category": "messages"}},
		{Type: "receive_audio_morning", Description: "Receive 8 voice notes in the morning", Metadata: map[string]any{"count": 8, "period": "morning", "category": "audio"}},
		{Type: "receive_audio_afternoon", Description: "Receive 6 voice notes in the afternoon", Metadata: map[string]any{"count": 6, "period": "afternoon", "category": "audio"}},
		{Type: "receive_images_morning", Description: "Receive 6 images in the morning", Metadata: map[string]any{"count": 6, "period": "morning", "category": "images"}},
		{Type: "receive_images_afternoon", Description: "Receive 5 images in the afternoon", Metadata: map[string]any{"count": 5, "period": "afternoon", "category": "images"}},
		{Type: "receive_videos_morning", Description: "Receive 4 videos in the morning", Metadata: map[string]any{"count": 4, "period": "morning", "category": "videos"}},
		{Type: "receive_videos_afternoon", Description: "Receive 5 videos in the afternoon", Metadata: map[string]any{"count": 5, "period": "afternoon", "category": "videos"}},
		{Type: "add_vcard", Description: "Add 2 vCards", Metadata: map[string]any{"count": 2, "category": "contacts"}},
		{Type: "change_profile_photo", Description: "Change the profile photo", Metadata: map[string]any{"category": "profile"}},
		{Type: "audio_call", Description: "Make 2 voice calls of 15 minutes in the morning", Metadata: map[string]any{"count": 2, "duration": 15, "period": "morning", "category": "calls"}},
		{Type: "video_call", Description: "Make 1 video call of 10 minutes in the afternoon", Metadata: map[string]any{"duration": 10, "period": "afternoon", "category": "calls"}},
		{Type: "receive_audio_calls", Description: "Receive 2 voice calls of 8 minutes throughout the day", Metadata: map[string]any{"count": 2, "duration": 8, "category": "calls"}},
		{Type: "receive_video_calls", Description: "Receive 2 video calls of 10 minutes throughout the day", Metadata: map[string]any{"count": 2, "duration": 10, "category": "calls"}},
		{Type: "send_temp_images_morning", Description: "Send 12 view-once images in the morning to 36 different contacts", Metadata: map[string]any{"count": 12, "contacts": 36, "period": "morning", "category": "images"}},
		{Type: "send_temp_images_afternoon", Description: "Send 11 view-once images in the afternoon to 29 different contacts", Metadata: map[string]any{"count": 11, "contacts": 29, "period": "afternoon", "category": "images"}},
		{Type: "leave_groups", Description: "Leave 3 groups", Metadata: map[string]any{"count": 3, "category": "groups"}},
		{Type: "join_groups", Description: "Join 1 group", Metadata: map[string]any{"count": 1, "category": "groups"}},
		{Type: "send_audio", Description: "Send 10 voice notes", Metadata: map[string]any{"count": 10, "category": "audio"}},
		{Type: "forward_messages", Description: "Forward 1 message", Metadata: map[string]any{"count": 1, "category": "messages"}},
		{Type: "delete_messages", Description: "Delete 3 messages in different conversations", Metadata: map[string]any{"count": 3, "category": "messages"}},
		{Type: "share_contacts", Description: "Share 2 contacts", Metadata: map[string]any{"count": 2, "category": "contacts"}},
		{Type: "clear_conversations", Description: "Clear 2 conversations", Metadata: map[string]any{"count": 2, "category": "conversations"}},
		{Type: "post_status", Description: "Post 12 status updates", Metadata: map[string]any{"count": 12, "category": "status"}},
	},
}
