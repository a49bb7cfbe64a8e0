package helpfmt

// WithCommandName sets the name of the command
func WithCommandName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithCommandDescription sets the description shown above the usage line and next to the
// command when it is listed by its parent.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithFooter sets the text printed after everything else
func WithFooter(footer string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Footer = footer
	}
}

// WithCommandGroup sets the group the command is listed under by its parent. Group names are
// compared case-insensitively. An empty group hides the command.
func WithCommandGroup(group string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Group = group
	}
}

// HiddenCommand removes the command from its parent's subcommand listing
func HiddenCommand() ConfigureCommandFunc {
	return WithCommandGroup("")
}

// WithRequireSubcommand sets the bounds on the number of subcommands expected. min 0 makes the
// subcommand optional, max 0 means unlimited.
func WithRequireSubcommand(min, max int) ConfigureCommandFunc {
	return func(command *Command) {
		if min < 0 {
			min = 0
		}
		if max < 0 {
			max = 0
		}
		command.requireMin = min
		command.requireMax = max
	}
}

// WithOptions adds options to the command. Options already owned by another command are skipped.
func WithOptions(options ...*Option) ConfigureCommandFunc {
	return func(command *Command) {
		for _, opt := range options {
			_ = command.AddOption(opt)
		}
	}
}

// WithSubcommands function takes a list of subcommands and associates them with a command.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		for _, sub := range subcommands {
			_ = command.AddSubcommand(sub)
		}
	}
}

// WithHelpFlag adds a help option, see Command.SetHelpFlag
func WithHelpFlag(names, description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.SetHelpFlag(names, description)
	}
}

// WithHelpAllFlag adds a help-all option, see Command.SetHelpAllFlag
func WithHelpAllFlag(names, description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.SetHelpAllFlag(names, description)
	}
}
