//go:build windows

package roots

func defaultRoots() []Root {
	return []Root{
		{Path: `D:\Battle_Net`, Platform: "Battle.NET"},
		{Path: `D:\EA Games`, Platform: "EA Games"},
		{Path: `D:\EA_Games`, Platform: "EA Games"},
		{Path: `D:\EpicGames`, Platform: "Epic Games"},
		{Path: `D:\GOG_Galaxy\Games`, Platform: "GOG Galaxy"},
		{Path: `D:\SteamLibrary\steamapps\common`, Platform: "Steam"},
		{Path: `D:\Ubisoft`, Platform: "Ubisoft"},
		{Path: `D:\XboxGames`, Platform: "XBOX Games"},
	}
}
