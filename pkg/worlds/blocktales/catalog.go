package blocktales

import "github.com/blocktales/go-manual/pkg/options"

// Option keys contributed by this world.
const (
	KeyTotalCharactersToWinWith = "total_characters_to_win_with"
	KeySoloMode                 = "solo_mode"
	KeyISpyLogic                = "i_spy_logic"
	KeyShopsanity               = "shopsanity"
	KeyBUXShopHints             = "bux_shop_hints"
	KeyLevelsanity              = "levelsanity"
	KeyFishsanity               = "fishsanity"
	KeyChatsanity               = "chatsanity"
	KeyCAP                      = "cap"
	KeyCutscenesanity           = "cutscenesanity"
	KeyThePit                   = "the_pit"
	KeyDisablePostGoalContent   = "disable_postgoal_content"
	KeySoulType                 = "soul_type"
)

// CAP choice codes.
const (
	CAPIAgree    = 0
	CAPIDisagree = 1
)

// Soul type choice codes.
const (
	SoulPure = 0
	SoulDark = 1
)

// Catalog returns fresh copies of every option definition this world
// contributes, in presentation order. The descriptions are player-facing
// documentation shown in the generated template YAML and option docs.
func Catalog() []options.Definition {
	return []options.Definition{
		options.NewRange(
			KeyTotalCharactersToWinWith,
			"Number of characters to beat the game with before victory",
			"Instead of having to beat the game with all characters, you can limit locations to a subset of character victory locations.",
			10, 50, 50,
		),
		options.NewToggle(
			KeySoloMode,
			"Solo Mode",
			`Enable Solo Mode, a mode where:
1. Additional Party Member Items are removed from the item pool.
2. Cards that are only beneficial in a party are removed from the item pool.`,
		),
		options.NewDefaultOnToggle(
			KeyISpyLogic,
			"I Spy Logic",
			`Toggle if certain BUX Checks require the I Spy Card to obtain.
Recommended for those that have no idea where some of the more hidden BUX are.`,
		),
		options.NewToggle(
			KeyShopsanity,
			"Shopsanity",
			`Add all of the items you can purchase in Shops as Checks.
You do NOT have to buy everything in the Shops if you can't afford it.
Just get to a Shop and you can send its Checks.
Clarifying that now so people don't start grinding TIX for Shop Checks.
(178 Checks)`,
		),
		options.NewDefaultOnToggle(
			KeyBUXShopHints,
			"BUX Shop Hints",
			`Toggle if the BUX Shop Checks will be automatically hinted at the start of the Multiworld.
Disable if you want the items that are held in your BUX Shop to be a mystery...`,
		),
		options.NewDefaultOnToggle(
			KeyLevelsanity,
			"Levelsanity",
			`Add Level Ups as Checks.
The Regions used for these are rough estimates on where you may level up.
They may be slightly altered as I continue to update the Manual.
(12 Checks)`,
		),
		options.NewDefaultOnToggle(
			KeyFishsanity,
			"Fishsanity",
			`Add catching fish as Checks.
This also adds Worm as a Progression Consumable.
You must have the Worm Item to fish.
The fishing spot is located in the Meadows, in a room you normally go through.
If you've been there before, you can easily warp to that room at anytime.
(10 Checks)`,
		),
		options.NewToggle(
			KeyChatsanity,
			"Chatsanity",
			`Add talking to NPCs as Checks.
WARNING: If you enable this, prepare for way too much Filler.
(705 Checks)`,
		),
		options.NewChoice(
			KeyCAP,
			"CAP",
			`As per Paragraph 4 of the CAP (Chatsanity Acknowledgement Pact), you must agree to the following to enable Chatsanity:
By signing this definitely real contract, you acknowledge the consequences of having the Option 'Chatsanity' turned on, especially when enabled with a non-early Goal.
Furthermore, you are aware of how many Checks and, by extension, how much Filler and/or Traps will be added to the pool for you as a result of this.
Please sign the contract by choosing I Agree below to confirm that this is truly what you want.`,
			CAPIAgree,
			options.Choice{Label: "i_agree", Code: CAPIAgree},
			options.Choice{Label: "i_disagree", Code: CAPIDisagree},
		),
		options.NewDefaultOnToggle(
			KeyCutscenesanity,
			"Cutscenesanity",
			`Add in-game cutscenes as Checks.
Cutscenes are usually the scenes where one or more of the following occur:
- The screen has black bars on the sides
- Unique NPC and/or Player animations
- Forced interaction with characters that can't be avoided (like Kyoko in Chapter 2)
...or other things that are often unique to cutscenes.
This is a bit iffy to determine what is/isn't a Cutscene, so input is appreciated so I can refine it.
(79 Checks)`,
		),
		options.NewToggle(
			KeyThePit,
			"The Pit",
			`Adds each floor of the Pit as Checks.
Only enable if you don't mind potential in logic suffering.
(40 Checks)`,
		),
		options.NewDefaultOnToggle(
			KeyDisablePostGoalContent,
			"Disable Post-Goal Content",
			`Remove Items and Checks that come after your selected Goal.
Recommended for Syncs especially, but could be used in Asyncs, too.`,
		),
		options.NewChoice(
			KeySoulType,
			"Soul Type",
			`How does your soul look on the inside?
This determines if you're going to be a nice person or a heartless person during your run.
For example, Pure expects you to save Accountant Jim with the Dynamite, but Dark expects you to leave him there.
(you monster)`,
			SoulPure,
			options.Choice{Label: "pure", Code: SoulPure},
			options.Choice{Label: "dark", Code: SoulDark},
		),
	}
}

// Register writes every catalog entry into the registry, unconditionally
// overwriting any prior binding for the same key. It never fails.
func Register(reg *options.Registry) {
	for _, def := range Catalog() {
		reg.Set(def)
	}
}
