package discord

// Scalar enumerations the audit log's change converters resolve wire
// integers into. Values follow the Discord API documentation.

type VerificationLevel int

const (
	VerificationLevelNone VerificationLevel = iota
	VerificationLevelLow
	VerificationLevelMedium
	VerificationLevelHigh
	VerificationLevelVeryHigh
)

type MFALevel int

const (
	MFALevelNone MFALevel = iota
	MFALevelElevated
)

type MessageNotificationLevel int

const (
	MessageNotificationAllMessages MessageNotificationLevel = iota
	MessageNotificationOnlyMentions
)

type ContentFilterLevel int

const (
	ContentFilterDisabled ContentFilterLevel = iota
	ContentFilterMembersWithoutRoles
	ContentFilterAllMembers
)

type NSFWLevel int

const (
	NSFWLevelDefault NSFWLevel = iota
	NSFWLevelExplicit
	NSFWLevelSafe
	NSFWLevelAgeRestricted
)

type ChannelType int

const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
	ChannelTypeGuildAnnouncement
)

const (
	ChannelTypeAnnouncementThread ChannelType = iota + 10
	ChannelTypePublicThread
	ChannelTypePrivateThread
	ChannelTypeGuildStageVoice
	ChannelTypeGuildDirectory
	ChannelTypeGuildForum
	ChannelTypeGuildMedia
)

type VideoQualityMode int

const (
	VideoQualityAuto VideoQualityMode = iota + 1
	VideoQualityFull
)

type SortOrder int

const (
	SortOrderLatestActivity SortOrder = iota
	SortOrderCreationDate
)

type ForumLayout int

const (
	ForumLayoutNotSet ForumLayout = iota
	ForumLayoutListView
	ForumLayoutGalleryView
)

type OverwriteType int

const (
	OverwriteTypeRole OverwriteType = iota
	OverwriteTypeMember
)

type WebhookType int

const (
	WebhookTypeIncoming WebhookType = iota + 1
	WebhookTypeChannelFollower
	WebhookTypeApplication
)

type PrivacyLevel int

const (
	PrivacyLevelPublic PrivacyLevel = iota + 1
	PrivacyLevelGuildOnly
)

type StickerFormat int

const (
	StickerFormatPNG StickerFormat = iota + 1
	StickerFormatAPNG
	StickerFormatLottie
	StickerFormatGIF
)

type ExpireBehavior int

const (
	ExpireBehaviorRemoveRole ExpireBehavior = iota
	ExpireBehaviorKick
)

type ScheduledEventStatus int

const (
	ScheduledEventStatusScheduled ScheduledEventStatus = iota + 1
	ScheduledEventStatusActive
	ScheduledEventStatusCompleted
	ScheduledEventStatusCanceled
)

type ScheduledEventEntityType int

const (
	ScheduledEventEntityStageInstance ScheduledEventEntityType = iota + 1
	ScheduledEventEntityVoice
	ScheduledEventEntityExternal
)

type AutoModerationEventType int

const (
	AutoModerationEventMessageSend AutoModerationEventType = iota + 1
	AutoModerationEventMemberUpdate
)

type AutoModerationTriggerType int

const (
	AutoModerationTriggerKeyword AutoModerationTriggerType = iota + 1
	AutoModerationTriggerHarmfulLink
	AutoModerationTriggerSpam
	AutoModerationTriggerKeywordPreset
	AutoModerationTriggerMentionSpam
	AutoModerationTriggerMemberProfile
)

type AutoModerationActionType int

const (
	AutoModerationActionBlockMessage AutoModerationActionType = iota + 1
	AutoModerationActionSendAlert
	AutoModerationActionTimeout
	AutoModerationActionBlockMemberInteraction
)
