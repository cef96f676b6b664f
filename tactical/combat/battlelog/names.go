package battlelog

import "github.com/Osakana3610/Osakana-Guild-sub002/battle"

func actionKindName(k battle.ActionKind) string {
	switch k {
	case battle.ActionDefend:
		return "defend"
	case battle.ActionPhysicalAttack:
		return "physicalAttack"
	case battle.ActionPriestMagic:
		return "priestMagic"
	case battle.ActionMageMagic:
		return "mageMagic"
	case battle.ActionBreath:
		return "breath"
	case battle.ActionEnemySpecialSkill:
		return "enemySpecialSkill"
	case battle.ActionBattleStart:
		return "battleStart"
	case battle.ActionEnemyAppear:
		return "enemyAppear"
	case battle.ActionTurnStart:
		return "turnStart"
	case battle.ActionVictory:
		return "victory"
	case battle.ActionDefeat:
		return "defeat"
	case battle.ActionRetreat:
		return "retreat"
	case battle.ActionWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

func effectKindName(k battle.EffectKind) string {
	switch k {
	case battle.EffectPhysicalDamage:
		return "physicalDamage"
	case battle.EffectMagicDamage:
		return "magicDamage"
	case battle.EffectBreathDamage:
		return "breathDamage"
	case battle.EffectMagicHeal:
		return "magicHeal"
	case battle.EffectResurrection:
		return "resurrection"
	case battle.EffectStatusInflict:
		return "statusInflict"
	case battle.EffectStatusExpire:
		return "statusExpire"
	case battle.EffectEnemySpecialDamage:
		return "enemySpecialDamage"
	case battle.EffectEnemySpecialHeal:
		return "enemySpecialHeal"
	case battle.EffectEnemySpecialBuff:
		return "enemySpecialBuff"
	case battle.EffectReactionAttack:
		return "reactionAttack"
	case battle.EffectFollowUp:
		return "followUp"
	case battle.EffectRescue:
		return "rescue"
	case battle.EffectNecromancer:
		return "necromancer"
	case battle.EffectHealParty:
		return "healParty"
	case battle.EffectHealSelf:
		return "healSelf"
	case battle.EffectDamageSelf:
		return "damageSelf"
	case battle.EffectBuffExpire:
		return "buffExpire"
	case battle.EffectSpellChargeRecover:
		return "spellChargeRecover"
	case battle.EffectCover:
		return "cover"
	case battle.EffectEnemyAppear:
		return "enemyAppear"
	default:
		return "logOnly"
	}
}
