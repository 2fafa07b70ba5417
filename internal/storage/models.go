package storage

import "time"

// Session is the single-player save record. One row under a fixed key.
type Session struct {
	Key        string
	PlayerName string

	Money  int64
	VIP    bool
	Energy int

	RodLevel    int
	BaitLevel   int
	DepthLevel  int
	BucketLevel int
	DockLevel   int
	BoatLevel   int

	ActiveCharacter string

	TotalGoldEarned     int64
	TotalFishCaught     int64
	LegendaryFishCaught int64
}

type CaughtFish struct {
	ID          string
	Name        string
	Value       int64
	Rarity      string
	Description string
	CaughtAt    time.Time
}

type Quest struct {
	ID          string
	Trigger     string
	Description string
	Target      int64
	Progress    int64
	Reward      int64
	Claimed     bool
	CreatedAt   time.Time
}

type CrewMember struct {
	ID              string
	Role            string
	IncomePerSecond int64
	HiredAt         time.Time
}

type Discovery struct {
	Name          string
	FirstCaughtAt time.Time
}
