package components

import "github.com/yohamta/donburi"

type MeleeAttackData struct {
	Cooldown      float64 // seconds until another swing may start
	Timer         float64 // time accumulated toward the next swing frame
	HitRegistered bool    // hit resolution already ran for this swing
}

var MeleeAttack = donburi.NewComponentType[MeleeAttackData]()
